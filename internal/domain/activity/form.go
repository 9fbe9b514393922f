package activity

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ======================================================
// DRAFT (create)
// ======================================================

type Draft struct {
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Description string     `json:"description"`
	Visibility  Visibility `json:"visibility"`
	Status      Status     `json:"status"`
}

// Normalize remove espaços e aplica os valores padrão do formulário.
func (d *Draft) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Date = strings.TrimSpace(d.Date)
	d.StartTime = strings.TrimSpace(d.StartTime)
	d.EndTime = strings.TrimSpace(d.EndTime)
	d.Description = strings.TrimSpace(d.Description)

	if d.Visibility == "" {
		d.Visibility = DefaultVisibility
	}
	if d.Status == "" {
		d.Status = DefaultStatus
	}
}

func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title,
			validation.Required.Error("O título é obrigatório"),
			validation.RuneLength(0, 150).Error("O título deve ter no máximo 150 caracteres"),
		),
		validation.Field(&d.Date,
			validation.Required.Error("A data é obrigatória"),
			validation.Date(DateLayout).Error("A data deve estar no formato AAAA-MM-DD"),
		),
		validation.Field(&d.StartTime,
			validation.Required.Error("A hora inicial é obrigatória"),
			validation.Match(clockRe).Error("A hora inicial deve estar no formato HH:MM"),
		),
		validation.Field(&d.EndTime,
			validation.Required.Error("A hora final é obrigatória"),
			validation.Match(clockRe).Error("A hora final deve estar no formato HH:MM"),
			validation.By(notBefore(d.StartTime)),
		),
		validation.Field(&d.Visibility,
			validation.Required.Error("A visibilidade é obrigatória"),
			validation.In(VisibilityPublic, VisibilityPrivate).Error("Visibilidade inválida"),
		),
		validation.Field(&d.Status,
			validation.By(validStatus),
		),
	)
}

// Model converte o rascunho validado no registro persistido.
func (d Draft) Model(ownerID string) *models.Activity {
	return &models.Activity{
		Title:       d.Title,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Description: d.Description,
		Visibility:  string(d.Visibility),
		Status:      string(d.Status),
		UserID:      ownerID,
	}
}

// DraftFrom reconstrói um rascunho a partir de uma atividade existente.
func DraftFrom(a models.Activity) Draft {
	return Draft{
		Title:       a.Title,
		Date:        a.Date,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Description: a.Description,
		Visibility:  Visibility(a.Visibility),
		Status:      Status(a.Status),
	}
}

// ======================================================
// PATCH (update parcial)
// ======================================================

type Patch struct {
	Title       *string     `json:"title"`
	Date        *string     `json:"date"`
	StartTime   *string     `json:"start_time"`
	EndTime     *string     `json:"end_time"`
	Description *string     `json:"description"`
	Visibility  *Visibility `json:"visibility"`
	Status      *Status     `json:"status"`
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Date == nil && p.StartTime == nil &&
		p.EndTime == nil && p.Description == nil && p.Visibility == nil &&
		p.Status == nil
}

// Apply devolve uma cópia de a com os campos do patch aplicados.
func (p Patch) Apply(a models.Activity) models.Activity {
	if p.Title != nil {
		a.Title = strings.TrimSpace(*p.Title)
	}
	if p.Date != nil {
		a.Date = strings.TrimSpace(*p.Date)
	}
	if p.StartTime != nil {
		a.StartTime = strings.TrimSpace(*p.StartTime)
	}
	if p.EndTime != nil {
		a.EndTime = strings.TrimSpace(*p.EndTime)
	}
	if p.Description != nil {
		a.Description = strings.TrimSpace(*p.Description)
	}
	if p.Visibility != nil {
		a.Visibility = string(*p.Visibility)
	}
	if p.Status != nil {
		a.Status = string(*p.Status)
	}
	return a
}

// Columns retorna apenas as colunas presentes no patch.
func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Date != nil {
		cols["date"] = strings.TrimSpace(*p.Date)
	}
	if p.StartTime != nil {
		cols["start_time"] = strings.TrimSpace(*p.StartTime)
	}
	if p.EndTime != nil {
		cols["end_time"] = strings.TrimSpace(*p.EndTime)
	}
	if p.Description != nil {
		cols["description"] = strings.TrimSpace(*p.Description)
	}
	if p.Visibility != nil {
		cols["visibility"] = string(*p.Visibility)
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	return cols
}

// Validate confere o resultado do patch sobre a atividade atual, com as
// mesmas regras do formulário de criação. Visibilidade vazia no patch é
// rejeitada, não trocada pelo padrão.
func (p Patch) Validate(current models.Activity) error {
	return DraftFrom(p.Apply(current)).Validate()
}

// ======================================================
// HELPERS
// ======================================================

func notBefore(start string) validation.RuleFunc {
	return func(value interface{}) error {
		end, _ := value.(string)
		if !clockRe.MatchString(start) || !clockRe.MatchString(end) {
			return nil
		}
		s, _ := time.Parse(ClockLayout, start)
		e, _ := time.Parse(ClockLayout, end)
		if e.Before(s) {
			return errors.New("A hora final deve ser posterior à hora inicial")
		}
		return nil
	}
}

func validStatus(value interface{}) error {
	s, _ := value.(Status)
	if s == "" || s.Valid() {
		return nil
	}
	return errors.New("Status inválido")
}

// FieldErrors achata erros de validação em campo → mensagem.
func FieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for field, e := range verrs {
		out[field] = e.Error()
	}
	return out
}

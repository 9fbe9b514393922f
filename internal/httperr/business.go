package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

type businessMapping struct {
	status  int
	message string
}

var businessCodes = map[string]businessMapping{
	"activity_not_found":  {http.StatusNotFound, "Atividade não encontrada."},
	"forbidden":           {http.StatusForbidden, "Apenas o criador pode alterar esta atividade."},
	"invalid_month":       {http.StatusBadRequest, "Mês inválido."},
	"invalid_year":        {http.StatusBadRequest, "Ano inválido."},
	"invalid_date":        {http.StatusBadRequest, "Data inválida."},
	"empty_patch":         {http.StatusBadRequest, "Nenhum campo para atualizar."},
	"email_taken":         {http.StatusConflict, "E-mail já cadastrado."},
	"invalid_credentials": {http.StatusUnauthorized, "E-mail ou senha inválidos."},
	"user_not_found":      {http.StatusNotFound, "Usuário não encontrado."},
}

// WriteBusiness traduz um BusinessError conhecido em resposta HTTP.
// Retorna false quando err não é um erro de negócio mapeado.
func WriteBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}
	m, ok := businessCodes[be.Code]
	if !ok {
		return false
	}
	Write(c, m.status, be.Code, m.message)
	return true
}

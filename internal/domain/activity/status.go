package activity

// ===============================
// Activity Status
// ===============================

type Status string

const (
	StatusReservado             Status = "reservado"
	StatusConfirmado            Status = "confirmado"
	StatusAtendimentoRealizado  Status = "atendimento_realizado"
	StatusAguardandoAtendimento Status = "aguardando_atendimento"
	StatusCancelado             Status = "cancelado"
)

// DefaultStatus é o status inicial quando o formulário não informa um.
const DefaultStatus = StatusAguardandoAtendimento

// Statuses lista os status na ordem em que o formulário os apresenta.
func Statuses() []Status {
	return []Status{
		StatusReservado,
		StatusConfirmado,
		StatusAtendimentoRealizado,
		StatusAguardandoAtendimento,
		StatusCancelado,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusReservado,
		StatusConfirmado,
		StatusAtendimentoRealizado,
		StatusAguardandoAtendimento,
		StatusCancelado:
		return true
	}
	return false
}

// StatusLabel retorna o rótulo exibido para o status. Status vazio ou
// desconhecido retorna "".
func StatusLabel(s Status) string {
	switch s {
	case StatusReservado:
		return "Reservado"
	case StatusConfirmado:
		return "Confirmado"
	case StatusAtendimentoRealizado:
		return "Atendimento Realizado"
	case StatusAguardandoAtendimento:
		return "Aguardando Atendimento"
	case StatusCancelado:
		return "Cancelado"
	}
	return ""
}

// StatusColor retorna a classe de cor usada no badge do status.
func StatusColor(s Status) string {
	switch s {
	case StatusReservado:
		return "bg-yellow-100"
	case StatusConfirmado:
		return "bg-green-100"
	case StatusAtendimentoRealizado:
		return "bg-blue-100"
	case StatusAguardandoAtendimento:
		return "bg-green-50"
	case StatusCancelado:
		return "bg-red-100"
	}
	return ""
}

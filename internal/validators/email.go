package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// NormalizeEmail deixa o e-mail no formato usado como chave de login.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomain devolve o domínio após o último "@", ou "" se não houver.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// IsEmailDomainValid aceita o domínio com registro MX ou, na falta dele,
// algum endereço IP.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	domain := EmailDomain(email)
	if domain == "" || !strings.Contains(domain, ".") {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	r := net.DefaultResolver

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

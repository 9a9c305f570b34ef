package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Customer cliente (concesionario) que hace pedidos de fundas.
type Customer struct {
	ID           int64
	Name         string
	City         string
	PasswordHash string
	CreatedAt    time.Time
}

// FormatCustomerCode código visible del cliente: M + id con al menos dos dígitos (M05, M12).
func FormatCustomerCode(id int64) string {
	return fmt.Sprintf("M%02d", id)
}

// ParseCustomerCode acepta "M12", "m05" o "12" y devuelve el id numérico.
func ParseCustomerCode(code string) (int64, bool) {
	s := strings.TrimSpace(code)
	if s == "" {
		return 0, false
	}
	if s[0] == 'M' || s[0] == 'm' {
		s = s[1:]
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Package procurement contiene las reglas de dominio de las órdenes de materia prima:
// estados canónicos, su forma normalizada y la regla que decide cuándo una transición
// descuenta stock.
package procurement

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jhoicas/tekstil-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// OrderStatus estado canónico de una orden de materia prima. Es el valor que se persiste.
type OrderStatus string

const (
	StatusPending       OrderStatus = "PENDING"
	StatusInPreparation OrderStatus = "IN_PREPARATION"
	StatusApproved      OrderStatus = "APPROVED"
	StatusDelivered     OrderStatus = "DELIVERED"
)

// Statuses lista los estados en el orden en que se muestran.
var Statuses = []OrderStatus{StatusPending, StatusInPreparation, StatusApproved, StatusDelivered}

// aliases: clave normalizada -> estado canónico. Incluye la forma inglesa y la turca.
var aliases = map[string]OrderStatus{
	"PENDING":       StatusPending,
	"BEKLEMEDE":     StatusPending,
	"INPREPARATION": StatusInPreparation,
	"HAZIRLANIYOR":  StatusInPreparation,
	"APPROVED":      StatusApproved,
	"ONAYLANDI":     StatusApproved,
	"DELIVERED":     StatusDelivered,
	"TESLIMEDILDI":  StatusDelivered,
}

var labels = map[OrderStatus]string{
	StatusPending:       "Beklemede",
	StatusInPreparation: "Hazırlanıyor",
	StatusApproved:      "Onaylandı",
	StatusDelivered:     "Teslim Edildi",
}

// ParseOrderStatus convierte el texto libre recibido del cliente en un estado canónico.
// Acepta mayúsculas/minúsculas, letras turcas con o sin diacríticos, espacios, '_' y '-'.
// Cualquier otro texto devuelve domain.ErrInvalidStatus.
func ParseOrderStatus(text string) (OrderStatus, error) {
	key := normalizeKey(text)
	if key == "" {
		return "", fmt.Errorf("%w: vacío", domain.ErrInvalidStatus)
	}
	s, ok := aliases[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, text)
	}
	return s, nil
}

// FromStored interpreta un valor leído de la base de datos. Filas antiguas pueden guardar
// la forma turca ("TESLIM EDILDI"); si no se reconoce se conserva el texto tal cual.
func FromStored(raw string) OrderStatus {
	if s, err := ParseOrderStatus(raw); err == nil {
		return s
	}
	return OrderStatus(strings.TrimSpace(raw))
}

// normalizeKey: trim, mayúsculas con reglas turcas, sin diacríticos y sin separadores.
// cases.Caser y transform.Transformer guardan estado, por eso se crean en cada llamada.
func normalizeKey(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	s = cases.Upper(language.Turkish).String(s)
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	s = strings.NewReplacer("İ", "I", "ı", "I").Replace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '_' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// Valid indica si s es uno de los cuatro estados canónicos.
func (s OrderStatus) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Label etiqueta turca para listados y exportaciones.
func (s OrderStatus) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func (s OrderStatus) String() string { return string(s) }

// IsFirstDelivery es la única transición con efectos sobre el stock: de cualquier
// estado distinto de DELIVERED a DELIVERED.
func IsFirstDelivery(previous, next OrderStatus) bool {
	return previous != StatusDelivered && next == StatusDelivered
}

// DeliveryNote nota del movimiento de salida generado por la primera entrega.
func DeliveryNote(orderID int64) string {
	return fmt.Sprintf("Order DELIVERED #%d", orderID)
}

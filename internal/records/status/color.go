package status

import "compliancedesk/internal/records/models"

// Color is a presentation token for a document status badge.
type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
	ColorGray  Color = "gray"
)

// StatusColor maps a document status to its badge colour. Unknown statuses are gray.
func StatusColor(s models.DocumentStatus) Color {
	switch s {
	case models.DocumentStatusActive:
		return ColorGreen
	case models.DocumentStatusExpired:
		return ColorRed
	case models.DocumentStatusRenewed:
		return ColorBlue
	default:
		return ColorGray
	}
}

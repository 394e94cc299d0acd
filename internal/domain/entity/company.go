package entity

// CompanyInfo identidad del emisor del presupuesto. Es una constante de
// proceso (viene de configuración), no editable desde la API.
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	LogoURL string
}

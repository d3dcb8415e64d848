package model

// DashboardStats is the aggregate shown in the dashboard's stat cards.
type DashboardStats struct {
	TotalDocuments    int    `json:"total_documents"`
	VerifiedDocuments int    `json:"verified_documents"`
	StorageUsed       string `json:"storage_used"`
	Summaries         int    `json:"summaries"`
}

// Dashboard is the full view model returned by the dashboard endpoint.
type Dashboard struct {
	Stats      DashboardStats   `json:"stats"`
	Processing bool             `json:"processing"`
	Documents  []DocumentRecord `json:"documents"`
	Wallet     Wallet           `json:"wallet"`
}

// Wallet is the connected wallet shown in the dashboard header.
type Wallet struct {
	Address string `json:"address"`
	Short   string `json:"short"`
}

// NewWallet abbreviates addr to its first six and last four characters.
func NewWallet(addr string) Wallet {
	w := Wallet{Address: addr, Short: addr}
	if len(addr) > 10 {
		w.Short = addr[:6] + "..." + addr[len(addr)-4:]
	}
	return w
}

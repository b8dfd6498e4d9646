package common

// Location mirrors a platform location object. Search has no leading '?'
// and Hash has no leading '#'.
type Location struct {
	Protocol string `json:"protocol"`
	Hostname string `json:"hostname"`
	Port     string `json:"port"`
	Pathname string `json:"pathname"`
	Search   string `json:"search"`
	Hash     string `json:"hash"`
}

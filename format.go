package mutableurl

import "strings"

// Format substitutes the first occurrence of each placeholder in template,
// in this order: {protocol} {origin} {host} {hostname} {port} {pathname}
// {search} {hash}. A repeated placeholder is substituted once only, and
// unknown placeholders are left as they are.
func (u *URL) Format(template string) string {
	placeholders := []struct {
		token string
		value string
	}{
		{"{protocol}", u.protocol},
		{"{origin}", u.Origin()},
		{"{host}", u.Host()},
		{"{hostname}", u.hostname},
		{"{port}", u.port},
		{"{pathname}", u.pathname},
		{"{search}", u.search},
		{"{hash}", u.hash},
	}

	for _, p := range placeholders {
		template = strings.Replace(template, p.token, p.value, 1)
	}
	return template
}

package domain

// Link represents a short-key to URL mapping
type Link struct {
	Short string `json:"short"`
	URL   string `json:"url"`
}

// Credential is the single stored login for the deployment.
// The password is kept as an opaque argon2id hash, never plaintext.
type Credential struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password"`
}

// Store is the full persisted state: one credential plus the complete
// short-key → URL mapping. This is both the bootstrap artifact and the
// live database, rewritten wholesale on every mutation.
type Store struct {
	Username     string            `yaml:"username"`
	PasswordHash string            `yaml:"password"`
	Links        map[string]string `yaml:"links"`
}

// Credential returns the stored login credential.
func (s *Store) Credential() Credential {
	return Credential{Username: s.Username, PasswordHash: s.PasswordHash}
}

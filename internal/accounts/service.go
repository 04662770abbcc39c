package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/ledgerform/internal/model"
)

// Service provides in-memory lookup over the account list.
type Service struct {
	accounts []model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts. Duplicate names are
// an error because the form offers each label once.
func NewService(accounts []model.Account) (*Service, error) {
	byName := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		if _, dup := byName[a.Name]; dup {
			return nil, fmt.Errorf("duplicate account %q", a.Name)
		}
		byName[a.Name] = a
	}
	return &Service{accounts: accounts, byName: byName}, nil
}

// Load reads an accounts.csv file and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts %s: %w", path, err)
	}
	if len(accts) == 0 {
		return nil, fmt.Errorf("accounts %s: no accounts defined", path)
	}
	return NewService(accts)
}

// Names returns the account labels in display order.
func (s *Service) Names() []string {
	names := make([]string, len(s.accounts))
	for i, a := range s.accounts {
		names[i] = a.Name
	}
	return names
}

// Exists reports whether name is a selectable account.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Save writes the account list to path, creating parent directories.
func (s *Service) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}

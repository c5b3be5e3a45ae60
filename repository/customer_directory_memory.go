package repository

import (
	"context"
	"sync"

	"credflow/domain"
)

// CustomerDirectoryMemory is an in-memory CustomerDirectory, keyed by phone
// number. It stands in for the external CRM in tests and demos.
type CustomerDirectoryMemory struct {
	mu       sync.RWMutex
	profiles map[string]domain.CustomerProfile
}

// NewCustomerDirectoryMemory creates a directory seeded with the given profiles.
func NewCustomerDirectoryMemory(profiles ...domain.CustomerProfile) *CustomerDirectoryMemory {
	d := &CustomerDirectoryMemory{
		profiles: make(map[string]domain.CustomerProfile, len(profiles)),
	}
	for _, p := range profiles {
		d.profiles[p.PhoneNumber] = p
	}
	return d
}

// Add inserts or replaces a profile.
func (d *CustomerDirectoryMemory) Add(profile domain.CustomerProfile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profiles[profile.PhoneNumber] = profile
}

func (d *CustomerDirectoryMemory) ResolveByPhone(
	ctx context.Context,
	phoneNumber string,
) (domain.CustomerProfile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	profile, ok := d.profiles[phoneNumber]
	if !ok {
		return domain.CustomerProfile{}, domain.ErrCustomerNotFound
	}
	return profile, nil
}

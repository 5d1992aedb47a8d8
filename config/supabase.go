package config

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient builds a client from the service role key, falling back
// to the anon key. An error here (or missing credentials) means the caller
// should fall back to the local workbook backend instead of exiting.
func NewSupabaseClient(cfg *Config) (*supa.Client, error) {
	key := cfg.SupabaseServiceKey
	if key == "" {
		key = cfg.SupabaseAnonKey
	}
	if cfg.SupabaseURL == "" || key == "" {
		return nil, fmt.Errorf("supabase credentials not configured")
	}
	client, err := supa.NewClient(cfg.SupabaseURL, key, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return client, nil
}

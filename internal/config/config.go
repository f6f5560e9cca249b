// Package config provides the application configuration: site identity
// strings and the vocabularies of valid areas, coaching institutes, and
// facility tags.
package config

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/erooms-in/erooms/internal/store"
)

// SocialLinks holds the site's social media URLs.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
}

// AppConfig is the admin-editable application configuration, persisted
// as a single JSON blob.
type AppConfig struct {
	SiteName              string      `json:"siteName"`
	Tagline               string      `json:"tagline"`
	HeroDescription       string      `json:"heroDescription"`
	FooterText            string      `json:"footerText"`
	MaintenanceMode       bool        `json:"maintenanceMode"`
	AllowNewRegistrations bool        `json:"allowNewRegistrations"`
	SupportWhatsApp       string      `json:"supportWhatsApp"`
	SupportPhone          string      `json:"supportPhone"`
	SupportEmail          string      `json:"supportEmail"`
	SocialLinks           SocialLinks `json:"socialLinks"`
	Areas                 []string    `json:"areas"`
	Institutes            []string    `json:"institutes"`
	Facilities            []string    `json:"facilities"`
	LastUpdated           string      `json:"lastUpdated"`
}

// Default returns the configuration seeded on first run.
func Default() AppConfig {
	return AppConfig{
		SiteName:              "eRooms",
		Tagline:               "Student stays in Kota, sorted",
		HeroDescription:       "Browse verified hostels, PGs, flats and mess facilities across every coaching cluster in Kota.",
		FooterText:            "Made for Kota aspirants.",
		MaintenanceMode:       false,
		AllowNewRegistrations: true,
		SupportWhatsApp:       "919876500000",
		SupportPhone:          "07442500000",
		SupportEmail:          "support@erooms.in",
		SocialLinks: SocialLinks{
			Instagram: "https://instagram.com/erooms.in",
			Twitter:   "https://twitter.com/eroomsin",
			LinkedIn:  "https://linkedin.com/company/erooms-in",
		},
		Areas: []string{
			"Landmark City (Kunadi)",
			"Talwandi",
			"Vigyan Nagar",
			"Jawahar Nagar",
			"Indra Vihar",
			"Rajeev Gandhi Nagar",
			"Mahaveer Nagar",
			"Electronic Complex (Indraprastha)",
		},
		Institutes: []string{
			"Allen Samyak",
			"Allen Sangyan",
			"Allen Supath",
			"Allen Safalya",
			"Allen Satyarth",
			"PW Vidyapeeth",
			"PW Gurukulam",
			"Motion Kota",
			"Resonance Kota",
		},
		Facilities: []string{
			"AC",
			"Attached Washroom",
			"Geyser",
			"Laundry",
			"Biometric Entry",
			"Mess Facility",
			"CCTV",
			"RO Water",
			"Study Table",
			"WiFi",
			"Power Backup",
			"Parking",
		},
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
}

// Service reads and writes the persisted configuration and notifies
// subscribers when it changes. Components that only need the current
// vocabularies call Load on demand instead of holding a copy.
type Service struct {
	store store.Store

	mu   sync.Mutex
	subs []func(AppConfig)
}

// NewService creates a config service over the given store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Load returns the persisted configuration. An absent blob is seeded
// with the default; a malformed blob degrades to the default without
// surfacing an error. Empty vocabularies are backfilled so selector
// validation always has something to check against.
func (s *Service) Load() AppConfig {
	raw, ok, err := s.store.Get(store.KeyConfig)
	if err != nil || !ok {
		cfg := Default()
		if !ok && err == nil {
			s.persist(cfg)
		}
		return cfg
	}

	var cfg AppConfig
	if jsonErr := json.Unmarshal([]byte(raw), &cfg); jsonErr != nil {
		return Default()
	}

	def := Default()
	if len(cfg.Areas) == 0 {
		cfg.Areas = def.Areas
	}
	if len(cfg.Institutes) == 0 {
		cfg.Institutes = def.Institutes
	}
	if len(cfg.Facilities) == 0 {
		cfg.Facilities = def.Facilities
	}
	if cfg.SiteName == "" {
		cfg.SiteName = def.SiteName
	}

	return cfg
}

// Save persists the configuration, stamps LastUpdated, and notifies
// subscribers with the saved value.
func (s *Service) Save(cfg AppConfig) error {
	cfg.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := s.persist(cfg); err != nil {
		return err
	}

	s.mu.Lock()
	subs := make([]func(AppConfig), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cfg)
	}

	return nil
}

// Subscribe registers a callback invoked after every successful Save.
func (s *Service) Subscribe(fn func(AppConfig)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Service) persist(cfg AppConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.store.Set(store.KeyConfig, string(data))
}

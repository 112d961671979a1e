package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/daniilsolovey/content-admin/internal/content"
)

// Storage keys of the settings documents.
const (
	KeySite     = "site"
	KeyPayments = "payments"
)

// Gateway ids.
const (
	GatewayCard     = "card"
	GatewayKakaoPay = "kakaopay"
	GatewayNaverPay = "naverpay"
	GatewayTossPay  = "tosspay"
)

var ErrUnknownGateway = fmt.Errorf("unknown payment gateway: %w", content.ErrNotFound)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	phonePattern    = regexp.MustCompile(`^[0-9+()\- ]{0,20}$`)
)

// Store persists settings documents as JSON under a key.
type Store interface {
	LoadSetting(ctx context.Context, key string) ([]byte, bool, error)
	SaveSetting(ctx context.Context, key string, value []byte) error
}

type Site struct {
	SiteName        string    `json:"siteName"`
	ContactEmail    string    `json:"contactEmail"`
	SupportPhone    string    `json:"supportPhone"`
	DefaultCurrency string    `json:"defaultCurrency"`
	MaintenanceMode bool      `json:"maintenanceMode"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type SitePatch struct {
	SiteName        *string
	ContactEmail    *string
	SupportPhone    *string
	DefaultCurrency *string
	MaintenanceMode *bool
}

// Gateway is a payment gateway configuration. APIKey is write-only: the
// Service only ever returns it masked.
type Gateway struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Enabled    bool      `json:"enabled"`
	MerchantID string    `json:"merchantId"`
	APIKey     string    `json:"apiKey"`
	TestMode   bool      `json:"testMode"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type GatewayPatch struct {
	Name       *string
	Enabled    *bool
	MerchantID *string
	APIKey     *string
	TestMode   *bool
}

func defaultSite() Site {
	return Site{
		SiteName:        "Lodging Admin",
		DefaultCurrency: "KRW",
	}
}

func defaultGateways() []Gateway {
	return []Gateway{
		{ID: GatewayCard, Name: "Credit card", TestMode: true},
		{ID: GatewayKakaoPay, Name: "KakaoPay", TestMode: true},
		{ID: GatewayNaverPay, Name: "NaverPay", TestMode: true},
		{ID: GatewayTossPay, Name: "TossPay", TestMode: true},
	}
}

// Service reads and updates site and payment settings.
type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time

	mu sync.Mutex
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   logger,
		now:   time.Now,
	}
}

// WithClock replaces the clock used for UpdatedAt.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Site(ctx context.Context) (Site, error) {
	site := defaultSite()
	if err := s.load(ctx, KeySite, &site); err != nil {
		return Site{}, err
	}

	return site, nil
}

func (s *Service) UpdateSite(ctx context.Context, patch SitePatch) (Site, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	site, err := s.Site(ctx)
	if err != nil {
		return Site{}, err
	}

	setString(&site.SiteName, patch.SiteName)
	setString(&site.ContactEmail, patch.ContactEmail)
	setString(&site.SupportPhone, patch.SupportPhone)
	setString(&site.DefaultCurrency, patch.DefaultCurrency)
	setBool(&site.MaintenanceMode, patch.MaintenanceMode)
	site.DefaultCurrency = strings.ToUpper(site.DefaultCurrency)

	if err := validateSite(&site); err != nil {
		return Site{}, err
	}

	site.UpdatedAt = s.now().UTC()
	if err := s.save(ctx, KeySite, site); err != nil {
		return Site{}, err
	}

	s.log.Info("site settings updated", "maintenanceMode", site.MaintenanceMode)
	return site, nil
}

// Gateways returns every gateway with its API key masked.
func (s *Service) Gateways(ctx context.Context) ([]Gateway, error) {
	gateways, err := s.gateways(ctx)
	if err != nil {
		return nil, err
	}

	for i := range gateways {
		gateways[i].APIKey = MaskKey(gateways[i].APIKey)
	}

	return gateways, nil
}

// UpdateGateway applies patch to gateway id. An API key equal to the masked
// current key is treated as unchanged, so clients may send back what they
// received.
func (s *Service) UpdateGateway(ctx context.Context, id string, patch GatewayPatch) (Gateway, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gateways, err := s.gateways(ctx)
	if err != nil {
		return Gateway{}, err
	}

	idx := -1
	for i := range gateways {
		if gateways[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Gateway{}, fmt.Errorf("%q: %w", id, ErrUnknownGateway)
	}

	g := gateways[idx]
	setString(&g.Name, patch.Name)
	setBool(&g.Enabled, patch.Enabled)
	setString(&g.MerchantID, patch.MerchantID)
	setBool(&g.TestMode, patch.TestMode)
	if patch.APIKey != nil && *patch.APIKey != MaskKey(g.APIKey) {
		g.APIKey = strings.TrimSpace(*patch.APIKey)
	}
	g.Name = strings.TrimSpace(g.Name)
	g.MerchantID = strings.TrimSpace(g.MerchantID)

	if err := validateGateway(&g); err != nil {
		return Gateway{}, err
	}

	g.UpdatedAt = s.now().UTC()
	gateways[idx] = g
	if err := s.save(ctx, KeyPayments, gateways); err != nil {
		return Gateway{}, err
	}

	s.log.Info("payment gateway updated", "gateway", id, "enabled", g.Enabled, "testMode", g.TestMode)

	g.APIKey = MaskKey(g.APIKey)
	return g, nil
}

// MaskKey hides all but the last four characters of key.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	r := []rune(key)
	if len(r) <= 4 {
		return "****"
	}

	return "****" + string(r[len(r)-4:])
}

// gateways returns the stored gateways merged over the defaults, so that a
// gateway added later is always listed.
func (s *Service) gateways(ctx context.Context) ([]Gateway, error) {
	var stored []Gateway
	if err := s.load(ctx, KeyPayments, &stored); err != nil {
		return nil, err
	}

	byID := make(map[string]Gateway, len(stored))
	for _, g := range stored {
		byID[g.ID] = g
	}

	gateways := defaultGateways()
	for i := range gateways {
		if g, ok := byID[gateways[i].ID]; ok {
			gateways[i] = g
		}
	}

	return gateways, nil
}

func (s *Service) load(ctx context.Context, key string, dst any) error {
	data, ok, err := s.store.LoadSetting(ctx, key)
	if err != nil {
		return &content.RepositoryError{Op: "load " + key + " settings", Err: err}
	}
	if !ok {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s settings: %w", key, err)
	}

	return nil
}

func (s *Service) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s settings: %w", key, err)
	}

	if err := s.store.SaveSetting(ctx, key, data); err != nil {
		s.log.Error("save settings failed", "key", key, "error", err)
		return &content.RepositoryError{Op: "save " + key + " settings", Err: err}
	}

	return nil
}

func validateSite(site *Site) error {
	verr := &content.ValidationError{}

	site.SiteName = strings.TrimSpace(site.SiteName)
	if site.SiteName == "" {
		verr.Add("siteName", "is required")
	}
	if site.ContactEmail != "" {
		if _, err := mail.ParseAddress(site.ContactEmail); err != nil {
			verr.Add("contactEmail", "must be a valid e-mail address")
		}
	}
	if !phonePattern.MatchString(site.SupportPhone) {
		verr.Add("supportPhone", "may contain only digits, spaces and + - ( )")
	}
	if !currencyPattern.MatchString(site.DefaultCurrency) {
		verr.Add("defaultCurrency", "must be a three-letter ISO 4217 code")
	}

	return verr.OrNil()
}

func validateGateway(g *Gateway) error {
	verr := &content.ValidationError{}

	if g.Name == "" {
		verr.Add("name", "is required")
	}
	if g.Enabled {
		if g.MerchantID == "" {
			verr.Add("merchantId", "is required when the gateway is enabled")
		}
		if g.APIKey == "" {
			verr.Add("apiKey", "is required when the gateway is enabled")
		}
	}

	return verr.OrNil()
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

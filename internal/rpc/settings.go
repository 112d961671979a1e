package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/content-admin/internal/settings"
)

// SettingsService provides RPC methods for site and payment settings.
type SettingsService struct {
	zenrpc.Service
	settings *settings.Service
}

func NewSettingsService(svc *settings.Service) *SettingsService {
	return &SettingsService{settings: svc}
}

// Site returns the site settings.
//
//zenrpc:return site settings
func (s SettingsService) Site(ctx context.Context) (Site, error) {
	site, err := s.settings.Site(ctx)
	if err != nil {
		return Site{}, newError(err)
	}

	return NewSite(site), nil
}

// UpdateSite changes the given site settings.
//
//zenrpc:site changed fields
//zenrpc:return site settings
//zenrpc:422 validation failed
func (s SettingsService) UpdateSite(ctx context.Context, site SiteInput) (Site, error) {
	updated, err := s.settings.UpdateSite(ctx, site.Patch())
	if err != nil {
		return Site{}, newError(err)
	}

	return NewSite(updated), nil
}

// Gateways returns the payment gateways with masked API keys.
//
//zenrpc:return payment gateways
func (s SettingsService) Gateways(ctx context.Context) ([]Gateway, error) {
	gateways, err := s.settings.Gateways(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return Map(gateways, NewGateway), nil
}

// UpdateGateway changes the given fields of a payment gateway.
//
//zenrpc:id gateway id
//zenrpc:gateway changed fields
//zenrpc:return payment gateway
//zenrpc:404 unknown gateway
//zenrpc:422 validation failed
func (s SettingsService) UpdateGateway(ctx context.Context, id string, gateway GatewayInput) (Gateway, error) {
	updated, err := s.settings.UpdateGateway(ctx, id, gateway.Patch())
	if err != nil {
		return Gateway{}, newError(err)
	}

	return NewGateway(updated), nil
}

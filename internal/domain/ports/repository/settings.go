package repository

import "context"

// SettingsPrefix namespaces every key this service stores alongside the host
// application's settings.
const SettingsPrefix = "misc.ents-credits."

// SettingKeyCreditsPerDollar holds the configured conversion ratio.
const SettingKeyCreditsPerDollar = "credits_per_dollar"

// SettingsRepository reads and writes namespaced plugin settings. Keys passed
// in are unprefixed; implementations apply SettingsPrefix.
type SettingsRepository interface {
	// Get returns the raw value for key, or domain.ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

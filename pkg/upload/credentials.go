package upload

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/album/pkg/store"
)

// Credentials name the Cloudinary cloud and the unsigned preset to use.
type Credentials struct {
	CloudName string `json:"cloudName"`
	Preset    string `json:"preset"`
}

// Complete reports whether both values are set.
func (c Credentials) Complete() bool {
	return strings.TrimSpace(c.CloudName) != "" && strings.TrimSpace(c.Preset) != ""
}

// Override returns c with every non-empty field of o applied on top.
func (c Credentials) Override(o Credentials) Credentials {
	if v := strings.TrimSpace(o.CloudName); v != "" {
		c.CloudName = v
	}
	if v := strings.TrimSpace(o.Preset); v != "" {
		c.Preset = v
	}
	return c
}

// FromSettings converts config values into Credentials.
func FromSettings(s store.CloudinarySettings) Credentials {
	return Credentials{CloudName: s.CloudName, Preset: s.Preset}
}

// LoadCredentials reads the stored credentials. Nothing stored yields empty
// credentials and no error.
func LoadCredentials(b store.Backend) (Credentials, error) {
	raw, err := b.Get(store.CloudinaryKey)
	if errors.Is(err, store.ErrNotFound) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, err
	}
	var c Credentials
	if err := json.Unmarshal(raw, &c); err != nil {
		return Credentials{}, fmt.Errorf("upload: stored credentials: %w", err)
	}
	return c, nil
}

// SaveCredentials stores c under its own key, apart from the album.
func SaveCredentials(b store.Backend, c Credentials) error {
	c.CloudName = strings.TrimSpace(c.CloudName)
	c.Preset = strings.TrimSpace(c.Preset)
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return b.Set(store.CloudinaryKey, raw)
}

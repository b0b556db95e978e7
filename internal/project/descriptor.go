package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qscaffold/qscaffold/internal/branding"
)

// DescriptorFile is the project descriptor name inside the app root.
const DescriptorFile = "package.json"

// Descriptor holds the package.json fields the generator reads.
type Descriptor struct {
	Name        string            `json:"name"`
	ProductName string            `json:"productName,omitempty"`
	Description string            `json:"description,omitempty"`
	Version     string            `json:"version,omitempty"`
	Author      string            `json:"author,omitempty"`
	CordovaID   string            `json:"cordovaId,omitempty"`
	Engines     map[string]string `json:"engines,omitempty"`
}

// DisplayName returns productName, then name, then the product default.
func (d *Descriptor) DisplayName() string {
	if s := strings.TrimSpace(d.ProductName); s != "" {
		return s
	}
	if s := strings.TrimSpace(d.Name); s != "" {
		return s
	}
	return branding.DefaultProductName()
}

// AppID returns cordovaId, or the default reverse-domain id.
func (d *Descriptor) AppID() string {
	if s := strings.TrimSpace(d.CordovaID); s != "" {
		return s
	}
	return branding.DefaultAppID()
}

// LoadDescriptor reads and parses package.json from appDir. The file is read
// on every call; nothing is cached.
func LoadDescriptor(appDir string) (*Descriptor, error) {
	path := filepath.Join(appDir, DescriptorFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project descriptor: %w", err)
	}
	return ParseDescriptor(data)
}

// ParseDescriptor parses package.json content.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing project descriptor: %w", err)
	}
	return &d, nil
}

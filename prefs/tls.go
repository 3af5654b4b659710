package prefs

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig names the certificate files used to reach a remote backend.
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
	CAFile   string `yaml:"ca_file"`
}

// ClientConfig loads the certificates into a tls.Config. It returns nil
// when TLS is not enabled.
func (c *TLSConfig) ClientConfig() (*tls.Config, error) {
	if c == nil || !c.Enabled {
		return nil, nil
	}
	if c.CAFile == "" {
		return nil, fmt.Errorf("%w: TLS CA file is required when TLS is enabled", ErrInvalidConfig)
	}
	// Client certificates are optional; servers without mutual TLS only
	// need the CA.
	if (c.CertFile == "") != (c.KeyFile == "") {
		return nil, fmt.Errorf("%w: TLS cert file and key file must be set together", ErrInvalidConfig)
	}

	caData, err := os.ReadFile(c.CAFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}
	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caData) {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}

	cfg := &tls.Config{
		RootCAs:    caPool,
		MinVersion: tls.VersionTLS12,
	}

	if c.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}

// Package tlstrust resolves the TLS trust configuration for outbound
// HTTPS requests. Trust sources are tried most-secure-first: the bundled
// Mozilla root store for reproducibility across platforms, then the
// operating system store, and as a last resort an unverified connection
// with a loud warning. Exactly one tier is adopted per invocation.
package tlstrust

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/certifi/gocertifi"
	"github.com/rs/zerolog"
)

// Tier names, reported through the debug log so operators can tell which
// trust path a given invocation used.
const (
	TierBundled  = "bundled"
	TierSystem   = "system"
	TierInsecure = "insecure"
)

// strategy is one trust source. A nil pool with a nil error is not allowed;
// failures are reported through err.
type strategy struct {
	name string
	load func() (*x509.CertPool, error)
}

var strategies = []strategy{
	{name: TierBundled, load: bundledPool},
	{name: TierSystem, load: systemPool},
}

// Resolve returns the TLS configuration to use and the name of the trust
// tier it came from. It never fails: when no verifying pool is available it
// returns an unverified configuration and warns on stderr.
func Resolve(log zerolog.Logger) (*tls.Config, string) {
	for _, s := range strategies {
		pool, err := s.load()
		if err != nil {
			log.Warn().Err(err).Str("tier", s.name).Msg("trust tier unavailable")
			continue
		}
		log.Info().Str("tier", s.name).Msg("TLS trust resolved")
		return &tls.Config{RootCAs: pool}, s.name
	}

	fmt.Fprintln(os.Stderr,
		"WARNING: no usable certificate trust store found; "+
			"TLS certificate and hostname verification are DISABLED")
	log.Warn().Str("tier", TierInsecure).Msg("TLS trust resolved")
	return &tls.Config{InsecureSkipVerify: true}, TierInsecure
}

func bundledPool() (*x509.CertPool, error) {
	return gocertifi.CACerts()
}

func systemPool() (*x509.CertPool, error) {
	pool, err := x509.SystemCertPool()
	if err != nil {
		return nil, err
	}
	if pool.Equal(x509.NewCertPool()) {
		return nil, errors.New("system trust store is empty")
	}
	return pool, nil
}

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-adapter-address answer-store address the client connects to
//	-d database DSN (postgres DSN on the server, sqlite path on the client)
//	-c/-config json file path with configs
//	-application-id application the client binary edits
//	-access-token bearer token presented to the answer-store server
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout outbound/inbound request timeout (e.g., "10s")
//	-probe-interval connectivity probe interval (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress, adapterAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var applicationID string
	var accessToken string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var probeInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&adapterAddress, "adapter-address", "Answer store address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&applicationID, "application-id", "", "Application ID to edit")
	flag.StringVar(&accessToken, "access-token", "", "Bearer token for the answer store")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			AccessToken:   accessToken,
			ApplicationID: applicationID,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{ProbeInterval: probeInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the address in "host:port" form, or an empty string when the
// address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "[host]:[port]" value into the receiver.
// Implements flag.Value.
func (a *NetAddress) Set(value string) error {
	host, portString, found := strings.Cut(value, ":")
	if !found {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be a number")
	}

	a.Host = host
	a.Port = port
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress is a listen address flag in host:port form.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads the server command line. Long flags use the GNU style
// ("--address"), the common ones also have a one-letter form.
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		httpAddr, grpcAddr NetAddress
		cfg                StructuredConfig
	)

	fs := pflag.NewFlagSet("secure-vault-server", pflag.ContinueOnError)
	fs.VarP(&httpAddr, "address", "a", "HTTP listen address host:port")
	fs.VarP(&grpcAddr, "grpc-address", "g", "gRPC listen address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "storage DSN (postgres://, sqlite://, bolt://)")
	fs.IntVar(&cfg.Storage.DB.MaxOpenConns, "max-open-conns", 0, "SQL connection pool size")
	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "JSON or YAML config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "HMAC key for session tokens")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "session token lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}

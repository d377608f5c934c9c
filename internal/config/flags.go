// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses all configuration flags from the command line.
// Positional arguments are left in flag.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-dotenv dotenv file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-password-hash-cost bcrypt cost
//	-employees-per-page employee collection page size
//	-items-per-page page size of the other collections
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-server API base URL used by the client
//	-client-timeout client request timeout
//	-v verbose client logging
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath, dotEnvPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var passwordHashCost, employeesPerPage, itemsPerPage int
	var requestTimeout time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var verbose bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&dotEnvPath, "dotenv", "", "dotenv file path")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost")
	flag.IntVar(&employeesPerPage, "employees-per-page", 0, "Employees per page")
	flag.IntVar(&itemsPerPage, "items-per-page", 0, "Items per page")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&adapterAddress, "server", "", "API base URL")
	flag.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	flag.BoolVar(&verbose, "v", false, "Verbose client logging")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
			EmployeesPerPage: employeesPerPage,
			ItemsPerPage:     itemsPerPage,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
			Verbose:        verbose,
		},
		JSONFilePath:   jsonConfigPath,
		DotEnvFilePath: dotEnvPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

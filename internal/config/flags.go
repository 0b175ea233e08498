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
//	-a backend base URL (e.g. http://127.0.0.1:8000)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d database DSN
//	-max-file-size per-file upload ceiling in bytes
//	-max-file-count maximum number of files per upload
//	-login-path login surface path
//	-main-path main surface path
//	-callback-address loopback handoff address in format [host]:[port]
//	-login-entry backend sign-in entry URL
//	-refresh-delay delay before reloading documents after a delete
//	-redirect-delay delay before returning to the login surface
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var callbackAddress NetAddress
	var backendAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var maxFileSize int64
	var maxFileCount int
	var loginPath, mainPath string
	var loginEntry string
	var refreshDelay, redirectDelay time.Duration
	var jsonConfigPath string

	flag.StringVar(&backendAddress, "a", "", "Backend base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.Int64Var(&maxFileSize, "max-file-size", 0, "Maximum size of one uploaded file in bytes")
	flag.IntVar(&maxFileCount, "max-file-count", 0, "Maximum number of files per upload")
	flag.StringVar(&loginPath, "login-path", "", "Login surface path")
	flag.StringVar(&mainPath, "main-path", "", "Main surface path")
	flag.Var(&callbackAddress, "callback-address", "Loopback handoff address host:port")
	flag.StringVar(&loginEntry, "login-entry", "", "Backend sign-in entry URL")
	flag.DurationVar(&refreshDelay, "refresh-delay", 0, "Delay before reloading documents after a delete")
	flag.DurationVar(&redirectDelay, "redirect-delay", 0, "Delay before returning to the login surface")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Upload: Upload{
			MaxFileSizeBytes: maxFileSize,
			MaxFileCount:     maxFileCount,
		},
		Session: Session{
			LoginPath:       loginPath,
			MainPath:        mainPath,
			CallbackAddress: callbackAddress.String(),
			LoginEntryURL:   loginEntry,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshDelay:  refreshDelay,
			RedirectDelay: redirectDelay,
		},
		JSONFilePath: jsonConfigPath,
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

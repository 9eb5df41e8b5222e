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

// ParseFlags parses all server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-b public base URL used in redirect links
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-images-endpoint object store endpoint for archived QR images
//	-images-bucket object store bucket
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var baseURL string
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var logLevel string
	var imagesEndpoint string
	var imagesBucket string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&baseURL, "b", "", "Public base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.StringVar(&imagesEndpoint, "images-endpoint", "", "Object store endpoint for QR images")
	flag.StringVar(&imagesBucket, "images-bucket", "", "Object store bucket for QR images")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			BaseURL:  baseURL,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Images: Images{
				Endpoint: imagesEndpoint,
				Bucket:   imagesBucket,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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
// An empty host means "all interfaces"; any other host must be "localhost"
// or a valid IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// stringList is a comma separated flag value.
type stringList []string

func (l *stringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// parseFlags parses configuration flags from args (without the program
// name) and returns the resulting config together with the remaining
// positional arguments.
//
// Flags:
//
//	-u/-api-url api base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-multipart-field name of the JSON form field in multipart requests
//	-credentials credentials backend: memory, file, bbolt, sqlite
//	-credentials-path credentials file path
//	-passphrase passphrase sealing the stored token
//	-notify comma separated notification sinks
//	-webhook-url webhook notification URL
//	-log-level log level
//	-log-file log file path
//	-a fake API listen address in format [host]:[port]
//	-c/-config JSON or YAML file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var apiURL string
	var requestTimeout time.Duration
	var multipartField string
	var credentialsType, credentialsPath, passphrase string
	var sinks stringList
	var webhookURL string
	var logLevel, logFile string
	var fakeAPIAddress NetAddress
	var configPath string

	fs := flag.NewFlagSet("go-biz-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiURL, "u", "", "API base URL")
	fs.StringVar(&apiURL, "api-url", "", "API base URL (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&multipartField, "multipart-field", "", "JSON field name in multipart requests")
	fs.StringVar(&credentialsType, "credentials", "", "Credentials backend: memory, file, bbolt, sqlite")
	fs.StringVar(&credentialsPath, "credentials-path", "", "Credentials file path")
	fs.StringVar(&passphrase, "passphrase", "", "Passphrase sealing the stored token")
	fs.Var(&sinks, "notify", "Comma separated notification sinks: log, toast, webhook")
	fs.StringVar(&webhookURL, "webhook-url", "", "Webhook notification URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.Var(&fakeAPIAddress, "a", "Fake API net address host:port")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			APIURL:             apiURL,
			RequestTimeout:     requestTimeout,
			MultipartDataField: multipartField,
		},
		Credentials: Credentials{
			Type:       credentialsType,
			Path:       credentialsPath,
			Passphrase: passphrase,
		},
		Notifier: Notifier{
			Sinks:      sinks,
			WebhookURL: webhookURL,
		},
		FakeAPI: FakeAPI{
			Address: fakeAPIAddress.String(),
		},
		ConfigFilePath: configPath,
	}, fs.Args(), nil
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

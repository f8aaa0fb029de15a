package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"bakery/internal/gateway"
)

// LoadGatewayTable reads a carrier table from YAML and merges it over the
// built-in carriers. An empty path returns the built-in table.
//
//	sms:
//	  cricket: sms.cricketwireless.net
//	mms:
//	  cricket: mms.cricketwireless.net
func LoadGatewayTable(path string) (gateway.Table, error) {
	defaults := gateway.DefaultTable()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return gateway.Table{}, fmt.Errorf("reading carrier gateway file: %w", err)
	}

	var table gateway.Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return gateway.Table{}, fmt.Errorf("parsing carrier gateway file: %w", err)
	}

	return defaults.Merge(table), nil
}

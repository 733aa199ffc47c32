package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/initia-labs/assetfields/config"
	"github.com/initia-labs/assetfields/explorer"
	"github.com/initia-labs/assetfields/fields"
	"github.com/initia-labs/assetfields/log"
)

const (
	flagFields = "fields"
	flagNation = "nation"
	flagFilter = "filter"
)

func newService() (*fields.Service, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	logger := log.NewLogger(cfg)
	client := explorer.NewClient(cfg.GetExplorerConfig(), logger)
	return fields.NewService(client, cfg.GetDefaultFields(), logger), nil
}

func addFieldsFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice(flagFields, nil, "fields to look for, the configured default list when omitted")
}

func fieldsFlag(cmd *cobra.Command) ([]string, error) {
	raw, err := cmd.Flags().GetStringSlice(flagFields)
	if err != nil {
		return nil, err
	}
	return config.ParseFieldList(strings.Join(raw, ",")), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates <collection>",
		Short: "List templates carrying the requested fields, per schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requested, err := fieldsFlag(cmd)
			if err != nil {
				return err
			}
			service, err := newService()
			if err != nil {
				return err
			}

			res, err := service.ScanTemplates(cmd.Context(), args[0], requested)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	addFieldsFlag(cmd)

	return cmd
}

func schemasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemas <collection>",
		Short: "List the requested fields found in each schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requested, err := fieldsFlag(cmd)
			if err != nil {
				return err
			}
			service, err := newService()
			if err != nil {
				return err
			}

			res, err := service.AggregateSchemas(cmd.Context(), args[0], requested)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	addFieldsFlag(cmd)

	return cmd
}

func assetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets <collection>",
		Short: "Fetch assets minted from templates carrying the requested fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requested, err := fieldsFlag(cmd)
			if err != nil {
				return err
			}
			service, err := newService()
			if err != nil {
				return err
			}

			assets, err := service.FetchByDiscoveredFields(cmd.Context(), args[0], requested)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), assets)
		},
	}
	addFieldsFlag(cmd)

	return cmd
}

func filterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <collection>",
		Short: "Fetch assets whose immutable data matches the given filters",
		Long: `
Fetch assets whose immutable data matches every --filter field=value pair.

Values are typed before matching: true and false match booleans, numbers match
numbers and anything else matches text. Wrap a value in double quotes to match
it as text, e.g. --filter 'code="007"'. With --nation the upper-cased nation is
added as a text filter on the nation field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nation, err := cmd.Flags().GetString(flagNation)
			if err != nil {
				return err
			}
			rawFilters, err := cmd.Flags().GetStringArray(flagFilter)
			if err != nil {
				return err
			}
			filters, err := parseFilterFlags(rawFilters)
			if err != nil {
				return err
			}
			service, err := newService()
			if err != nil {
				return err
			}

			assets, err := service.FetchByNation(cmd.Context(), args[0], nation, filters)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), assets)
		},
	}
	cmd.Flags().String(flagNation, "", "nation code, upper-cased before matching")
	cmd.Flags().StringArray(flagFilter, nil, "field=value filter, repeatable")

	return cmd
}

func parseFilterFlags(raw []string) (fields.FieldFilters, error) {
	filters := make(fields.FieldFilters, len(raw))
	for _, pair := range raw {
		field, value, ok := strings.Cut(pair, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid filter %q, expected field=value", pair)
		}
		filters[field] = fields.ParseFilterValue(value)
	}
	return filters, nil
}

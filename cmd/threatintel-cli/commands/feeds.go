// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/database/repositories"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/feeds"
	"github.com/l3montree-dev/threatintel/services"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/l3montree-dev/threatintel/utils"
	"github.com/spf13/cobra"
)

func printSources(w io.Writer, sources []dtos.FeedSource) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Name", "Type", "API Key"})
	tw.AppendRows(utils.Map(sources, func(source dtos.FeedSource) table.Row {
		apiKey := ""
		if source.RequiresAPIKey {
			apiKey = "required"
		}
		return table.Row{source.ID, source.Name, source.Type, apiKey}
	}))
	fmt.Fprintln(w, tw.Render())
}

func printResults(w io.Writer, results []dtos.FeedResult) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Source", "Status", "Added", "Total", "Error"})
	tw.AppendRows(utils.Map(results, func(result dtos.FeedResult) table.Row {
		status := "ok"
		if !result.Success {
			status = "failed"
		}
		return table.Row{result.Source, status, result.Added, result.Total, result.Error}
	}))
	fmt.Fprintln(w, tw.Render())
}

func NewSourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Lists all known threat feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			cfg, err := config.FeedsFromEnv()
			if err != nil {
				return err
			}
			// the catalog is static, no database is needed to print it
			feedService := feeds.NewFeedService(feeds.NewFeeds(cfg, nil), nil, cfg.Timeout)
			printSources(cmd.OutOrStdout(), feedService.Sources())
			return nil
		},
	}
}

func NewFetchCommand() *cobra.Command {
	fetch := cobra.Command{
		Use:   "fetch <source|all>",
		Short: "Runs one ingestion of a feed and stores new threats",
		Long:  `Runs one ingestion of the given feed, or all feeds, against the configured database. Meant to be triggered by cron.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			cfg, err := config.FeedsFromEnv()
			if err != nil {
				return err
			}
			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			feedService := feeds.NewFeedServiceFromConfig(cfg, repositories.NewThreatRepository(db))
			return runFetch(cmd.Context(), cmd.OutOrStdout(), feedService, args[0])
		},
	}

	return &fetch
}

func runFetch(ctx context.Context, w io.Writer, feedService shared.FeedService, source string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	if source == "all" {
		summary := feedService.FetchAll(ctx)
		results := make([]dtos.FeedResult, 0, len(summary.Results))
		for _, s := range feedService.Sources() {
			if result, ok := summary.Results[s.ID]; ok {
				results = append(results, result)
			}
		}
		printResults(w, results)
		slog.Info("fetched all feeds", "added", summary.TotalAdded, "duration", time.Since(start))
		return nil
	}

	result, err := feedService.FetchOne(ctx, source)
	if err != nil {
		return err
	}
	printResults(w, []dtos.FeedResult{result})
	if !result.Success {
		return fmt.Errorf("fetching %s failed", source)
	}
	return nil
}

func NewPruneRevokedTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune-revoked-tokens",
		Short: "Deletes revoked tokens which are expired anyway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			// pruning never signs tokens, so no secret is needed
			authService := services.NewAuthService(
				repositories.NewAccountRepository(db),
				repositories.NewRevokedTokenRepository(db),
				config.AuthConfig{AccessTokenTTL: time.Hour},
			)
			count, err := authService.PruneRevokedTokens()
			if err != nil {
				return err
			}
			slog.Info("pruned revoked tokens", "count", count)
			return nil
		},
	}
}

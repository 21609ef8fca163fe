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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var FeedRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "threatintel_feed_runs_total",
	Help: "The total number of feed ingestion runs by source and outcome",
}, []string{"source", "outcome"})

var FeedThreatsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "threatintel_feed_threats_added_total",
	Help: "The total number of threats added by feed ingestion runs",
}, []string{"source"})

var FeedRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "threatintel_feed_run_duration_seconds",
	Help:    "Duration of feed ingestion runs in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"source"})

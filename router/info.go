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

package router

import (
	"database/sql"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/threatintel/cmd/threatintel/api"
	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/database"
	"github.com/l3montree-dev/threatintel/shared"
)

type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Process  ProcessInfo  `json:"process"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Database DatabaseInfo `json:"database"`
}

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Branch    string `json:"branch,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion,omitempty"`
	NumGoroutines int    `json:"numGoroutines,omitempty"`
	HeapAlloc     uint64 `json:"heapAlloc"`
	Sys           uint64 `json:"sys"`
}

type PoolInfo struct {
	MaxConns      int `json:"maxConns"`
	TotalConns    int `json:"totalConns"`
	IdleConns     int `json:"idleConns"`
	AcquiredConns int `json:"acquiredConns"`
}

type DatabaseInfo struct {
	sql.DBStats
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool   `json:"migrationDirty,omitempty"`
	MigrationError   *string `json:"migrationError,omitempty"`

	Pool *PoolInfo `json:"pool,omitempty"`
}

func buildInfo() InfoResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	host, _ := os.Hostname()
	return InfoResponse{
		Build: BuildInfo{
			Version:   config.Version,
			Commit:    config.Commit,
			Branch:    config.Branch,
			BuildDate: config.BuildDate,
		},
		Runtime: RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			HeapAlloc:     mem.HeapAlloc,
			Sys:           mem.Sys,
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			Hostname:      host,
			UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
		},
	}
}

func databaseInfo(db shared.DB, pool *pgxpool.Pool) DatabaseInfo {
	info := DatabaseInfo{Status: "unknown"}
	if db == nil {
		return info
	}

	sqlDB, err := db.DB()
	if err != nil {
		msg := "failed to get database instance"
		info.Status = "unhealthy"
		info.Error = &msg
		return info
	}
	if err := sqlDB.Ping(); err != nil {
		msg := "database ping failed"
		info.Status = "unhealthy"
		info.Error = &msg
		return info
	}
	info.Status = "healthy"
	info.DBStats = sqlDB.Stats()

	if pool != nil {
		stats := pool.Stat()
		info.Pool = &PoolInfo{
			MaxConns:      int(stats.MaxConns()),
			TotalConns:    int(stats.TotalConns()),
			IdleConns:     int(stats.IdleConns()),
			AcquiredConns: int(stats.AcquiredConns()),
		}
	}

	if version, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		info.MigrationVersion = &version
		info.MigrationDirty = &dirty
	} else {
		msg := err.Error()
		info.MigrationError = &msg
	}
	return info
}

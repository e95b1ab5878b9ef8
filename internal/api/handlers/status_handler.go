package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// StatusHandler reports service liveness and basic host metrics.
type StatusHandler struct {
	startedAt time.Time
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{startedAt: time.Now()}
}

// StatusResponse is the status endpoint payload.
type StatusResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemUsedMB     uint64  `json:"memUsedMb"`
	MemTotalMB    uint64  `json:"memTotalMb"`
}

// Get handles the status request. Metric failures degrade to zeros rather
// than failing the health check.
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		resp.CPUPercent = percents[0]
	} else if err != nil {
		log.Warn().Err(err).Msg("Failed to read CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		resp.MemUsedMB = vm.Used / 1024 / 1024
		resp.MemTotalMB = vm.Total / 1024 / 1024
	} else {
		log.Warn().Err(err).Msg("Failed to read memory usage")
	}

	writeJSON(w, http.StatusOK, resp)
}

package pipelineService

import loadplanService "github.com/moonkaicuzui/hwk-loadplan/internal/services/loadplan-service"

type RunPipelineRequest struct {
	SkipFetch bool   `json:"skip_fetch"`
	Dir       string `json:"dir"`
}

type ParseLocalRequest struct {
	Dir string `json:"dir"`
}

type PipelineResult struct {
	RunID        string                    `json:"runId"`
	TotalRecords int                       `json:"totalRecords"`
	FactoryCount map[string]int            `json:"factoryCount"`
	Skipped      int                       `json:"skipped"`
	Errors       int                       `json:"errors"`
	Quality      loadplanService.QualityStats `json:"quality"`
}

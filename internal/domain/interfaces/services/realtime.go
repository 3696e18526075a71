// Package services defines interfaces for domain service contracts.
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// RealtimeService runs the realtime scan engines of the CLI
type RealtimeService interface {
	OssRealtimeScan(ctx context.Context, sourcePath, ignoredFilePath string) (*entities.OssResults, error)
	IacRealtimeScan(ctx context.Context, sourcePath, containerTool, ignoredFilePath string) (*entities.IacResults, error)
	SecretsRealtimeScan(ctx context.Context, sourcePath, ignoredFilePath string) (*entities.SecretsResults, error)
	ContainersRealtimeScan(ctx context.Context, sourcePath, ignoredFilePath string) (*entities.ContainersResults, error)
}

// WrapperService is the full set of CLI operations exposed by the wrapper
type WrapperService interface {
	RealtimeService

	AuthValidate(ctx context.Context) (string, error)
	MaskSecrets(ctx context.Context, filePath string) (*entities.MaskResult, error)
	TenantSettings(ctx context.Context) ([]entities.TenantSetting, error)
	IdeScansEnabled(ctx context.Context) (bool, error)
	AiMcpServerEnabled(ctx context.Context) (bool, error)
	TelemetryAIEvent(ctx context.Context, event entities.TelemetryEvent) (string, error)
	ResultsBFL(ctx context.Context, scanID uuid.UUID, queryID string, resultNodes []entities.Node) (int, error)
	CheckEngineExist(ctx context.Context, engine string) (string, error)
	Execute(ctx context.Context, req *entities.CommandRequest) (*entities.CommandResponse, error)
}

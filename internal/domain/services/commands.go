package services

// CLI commands, subcommands and flags used by the wrapper
const (
	cmdAuth      = "auth"
	cmdScan      = "scan"
	cmdUtils     = "utils"
	cmdTelemetry = "telemetry"
	cmdResults   = "results"

	subCmdValidate           = "validate"
	subCmdOssRealtime        = "oss-realtime"
	subCmdIacRealtime        = "iac-realtime"
	subCmdSecretsRealtime    = "secrets-realtime"
	subCmdContainersRealtime = "containers-realtime"
	subCmdMask               = "mask"
	subCmdTenant             = "tenant"
	subCmdTelemetryAI        = "ai"
	subCmdBFL                = "bfl"

	flagSource          = "-s"
	flagEngine          = "--engine"
	flagIgnoredFilePath = "--ignored-file-path"
	flagResultFile      = "--result-file"
	flagFormat          = "--format"
	formatJSON          = "json"
	flagScanID          = "--scan-id"
	flagQueryID         = "--query-id"
	flagAIProvider      = "--ai-provider"
	flagAgent           = "--agent"
	flagType            = "--type"
	flagSubType         = "--sub-type"
	flagProblemSeverity = "--problem-severity"
	flagScanType        = "--scan-type"
	flagStatus          = "--status"
	flagTotalCount      = "--total-count"
)

// Tenant setting keys
const (
	IdeScansKey    = "scan.config.plugins.ideScans"
	AiMcpServerKey = "scan.config.plugins.aiMcpServer"
)

package entities

import "time"

// RealtimeScanResult collects the output of every realtime engine for one source.
// A nil result with an entry in Errors means that engine failed.
type RealtimeScanResult struct {
	Source     string
	OSS        *OssResults
	IaC        *IacResults
	Secrets    *SecretsResults
	Containers *ContainersResults
	Errors     map[string]error
	Duration   time.Duration
}

// SeverityCounts tallies findings by severity, upper-cased
type SeverityCounts map[string]int

// RealtimeSummary is a condensed view over a RealtimeScanResult
type RealtimeSummary struct {
	VulnerablePackages int            `json:"vulnerablePackages"`
	PackageFindings    SeverityCounts `json:"packageFindings"`
	IacFindings        SeverityCounts `json:"iacFindings"`
	SecretFindings     SeverityCounts `json:"secretFindings"`
	ImageFindings      SeverityCounts `json:"imageFindings"`
	// FixVersions maps "manager/name@version" to the highest fix version
	// reported across that package's vulnerabilities
	FixVersions   map[string]string `json:"fixVersions"`
	FailedEngines []string          `json:"failedEngines"`
}

package entities

// Location is a position of a finding inside a scanned file
type Location struct {
	Line       int `json:"Line"`
	StartIndex int `json:"StartIndex"`
	EndIndex   int `json:"EndIndex"`
}

// OssVulnerability is a single advisory affecting a package
type OssVulnerability struct {
	ID          string `json:"Id,omitempty"`
	Severity    string `json:"Severity,omitempty"`
	Description string `json:"Description,omitempty"`
	FixVersion  string `json:"FixVersion,omitempty"`
}

// OssPackage is a dependency found by the OSS realtime engine
type OssPackage struct {
	PackageManager  string             `json:"PackageManager,omitempty"`
	PackageName     string             `json:"PackageName,omitempty"`
	PackageVersion  string             `json:"PackageVersion,omitempty"`
	FilePath        string             `json:"FilePath,omitempty"`
	Locations       []Location         `json:"Locations"`
	Status          string             `json:"Status,omitempty"`
	Vulnerabilities []OssVulnerability `json:"Vulnerabilities"`
}

// NewOssPackage returns p with nil collections replaced by empty ones
func NewOssPackage(p OssPackage) OssPackage {
	p.Locations = nonNil(p.Locations)
	p.Vulnerabilities = nonNil(p.Vulnerabilities)
	return p
}

// OssResults is the decoded output of an OSS realtime scan
type OssResults struct {
	Packages []OssPackage `json:"Packages"`
}

// NewOssResults builds an OssResults whose collections are never nil
func NewOssResults(packages []OssPackage) *OssResults {
	out := make([]OssPackage, 0, len(packages))
	for _, p := range packages {
		out = append(out, NewOssPackage(p))
	}
	return &OssResults{Packages: out}
}

// IacIssue is a misconfiguration found by the IaC realtime engine
type IacIssue struct {
	Title         string     `json:"Title,omitempty"`
	Description   string     `json:"Description,omitempty"`
	SimilarityID  string     `json:"SimilarityID,omitempty"`
	FilePath      string     `json:"FilePath,omitempty"`
	Severity      string     `json:"Severity,omitempty"`
	ExpectedValue string     `json:"ExpectedValue,omitempty"`
	ActualValue   string     `json:"ActualValue,omitempty"`
	Locations     []Location `json:"Locations"`
}

// IacResults is the decoded output of an IaC realtime scan
type IacResults struct {
	Results []IacIssue `json:"Results"`
}

// NewIacResults builds an IacResults whose collections are never nil
func NewIacResults(issues []IacIssue) *IacResults {
	out := make([]IacIssue, 0, len(issues))
	for _, issue := range issues {
		issue.Locations = nonNil(issue.Locations)
		out = append(out, issue)
	}
	return &IacResults{Results: out}
}

// Secret is a hardcoded credential found by the secrets realtime engine
type Secret struct {
	Title       string     `json:"Title,omitempty"`
	Description string     `json:"Description,omitempty"`
	SecretValue string     `json:"SecretValue,omitempty"`
	FilePath    string     `json:"FilePath,omitempty"`
	Severity    string     `json:"Severity,omitempty"`
	Locations   []Location `json:"Locations"`
}

// SecretsResults is the decoded output of a secrets realtime scan
type SecretsResults struct {
	Secrets []Secret `json:"Secrets"`
}

// NewSecretsResults builds a SecretsResults whose collections are never nil
func NewSecretsResults(secrets []Secret) *SecretsResults {
	out := make([]Secret, 0, len(secrets))
	for _, s := range secrets {
		s.Locations = nonNil(s.Locations)
		out = append(out, s)
	}
	return &SecretsResults{Secrets: out}
}

// ContainerVulnerability is a CVE affecting a container image
type ContainerVulnerability struct {
	CVE      string `json:"CVE,omitempty"`
	Severity string `json:"Severity,omitempty"`
}

// ContainerImage is an image reference found by the containers realtime engine
type ContainerImage struct {
	ImageName       string                   `json:"ImageName,omitempty"`
	ImageTag        string                   `json:"ImageTag,omitempty"`
	FilePath        string                   `json:"FilePath,omitempty"`
	Locations       []Location               `json:"Locations"`
	Status          string                   `json:"Status,omitempty"`
	Vulnerabilities []ContainerVulnerability `json:"Vulnerabilities"`
}

// ContainersResults is the decoded output of a containers realtime scan
type ContainersResults struct {
	Images []ContainerImage `json:"Images"`
}

// NewContainersResults builds a ContainersResults whose collections are never nil
func NewContainersResults(images []ContainerImage) *ContainersResults {
	out := make([]ContainerImage, 0, len(images))
	for _, img := range images {
		img.Locations = nonNil(img.Locations)
		img.Vulnerabilities = nonNil(img.Vulnerabilities)
		out = append(out, img)
	}
	return &ContainersResults{Images: out}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

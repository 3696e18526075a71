package services

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// SummarizeRealtime condenses a realtime scan into severity counts and the
// highest fix version per vulnerable package
func SummarizeRealtime(result *entities.RealtimeScanResult) *entities.RealtimeSummary {
	summary := &entities.RealtimeSummary{
		PackageFindings: entities.SeverityCounts{},
		IacFindings:     entities.SeverityCounts{},
		SecretFindings:  entities.SeverityCounts{},
		ImageFindings:   entities.SeverityCounts{},
		FixVersions:     map[string]string{},
		FailedEngines:   []string{},
	}
	if result == nil {
		return summary
	}

	if result.OSS != nil {
		for _, pkg := range result.OSS.Packages {
			if len(pkg.Vulnerabilities) == 0 {
				continue
			}
			summary.VulnerablePackages++

			fixes := make([]string, 0, len(pkg.Vulnerabilities))
			for _, v := range pkg.Vulnerabilities {
				summary.PackageFindings[severityKey(v.Severity)]++
				fixes = append(fixes, v.FixVersion)
			}
			if fix := HighestVersion(fixes); fix != "" {
				key := fmt.Sprintf("%s/%s@%s", pkg.PackageManager, pkg.PackageName, pkg.PackageVersion)
				summary.FixVersions[key] = fix
			}
		}
	}

	if result.IaC != nil {
		for _, issue := range result.IaC.Results {
			summary.IacFindings[severityKey(issue.Severity)]++
		}
	}

	if result.Secrets != nil {
		for _, s := range result.Secrets.Secrets {
			summary.SecretFindings[severityKey(s.Severity)]++
		}
	}

	if result.Containers != nil {
		for _, img := range result.Containers.Images {
			for _, v := range img.Vulnerabilities {
				summary.ImageFindings[severityKey(v.Severity)]++
			}
		}
	}

	for engine := range result.Errors {
		summary.FailedEngines = append(summary.FailedEngines, engine)
	}
	sort.Strings(summary.FailedEngines)

	return summary
}

// HighestVersion returns the highest semantic version among versions, in its
// original spelling. A missing "v" prefix is tolerated. When none of the
// values is a valid version the first non-empty one is returned.
func HighestVersion(versions []string) string {
	best, bestCanonical, fallback := "", "", ""
	for _, raw := range versions {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		if fallback == "" {
			fallback = v
		}
		canonical := v
		if !strings.HasPrefix(canonical, "v") {
			canonical = "v" + canonical
		}
		if !semver.IsValid(canonical) {
			continue
		}
		if bestCanonical == "" || semver.Compare(canonical, bestCanonical) > 0 {
			best, bestCanonical = v, canonical
		}
	}
	if best != "" {
		return best
	}
	return fallback
}

func severityKey(severity string) string {
	s := strings.ToUpper(strings.TrimSpace(severity))
	if s == "" {
		return "UNKNOWN"
	}
	return s
}

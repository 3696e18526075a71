package cliout

import (
	"strings"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// ParseOss decodes an oss-realtime result line
func (p *ResultParser) ParseOss(line string) *entities.OssResults {
	if isBlank(line) || !strings.Contains(line, packagesMarker) {
		return nil
	}

	root, err := decodeDocument(line)
	if err != nil {
		p.skip("oss", line, err)
		return nil
	}

	obj, err := asObject(root)
	if err != nil {
		p.skip("oss", line, err)
		return nil
	}

	packages, err := field(obj, "Packages", toOssPackage)
	if err != nil {
		p.skip("oss", line, err)
		return nil
	}

	return entities.NewOssResults(packages)
}

func toOssPackage(o object) (entities.OssPackage, error) {
	var pkg entities.OssPackage
	var err error

	if pkg.PackageManager, err = o.str("PackageManager"); err != nil {
		return pkg, err
	}
	if pkg.PackageName, err = o.str("PackageName"); err != nil {
		return pkg, err
	}
	if pkg.PackageVersion, err = o.str("PackageVersion"); err != nil {
		return pkg, err
	}
	if pkg.FilePath, err = o.str("FilePath"); err != nil {
		return pkg, err
	}
	if pkg.Status, err = o.str("Status"); err != nil {
		return pkg, err
	}
	if pkg.Locations, err = field(o, "Locations", toLocation); err != nil {
		return pkg, err
	}
	if pkg.Vulnerabilities, err = field(o, "Vulnerabilities", toOssVulnerability); err != nil {
		return pkg, err
	}

	return entities.NewOssPackage(pkg), nil
}

func toOssVulnerability(o object) (entities.OssVulnerability, error) {
	var v entities.OssVulnerability
	var err error

	if v.ID, err = o.str("Id"); err != nil {
		return v, err
	}
	if v.Severity, err = o.str("Severity"); err != nil {
		return v, err
	}
	if v.Description, err = o.str("Description"); err != nil {
		return v, err
	}
	if v.FixVersion, err = o.str("FixVersion"); err != nil {
		return v, err
	}
	return v, nil
}

func toLocation(o object) (entities.Location, error) {
	var loc entities.Location
	var err error

	if loc.Line, err = o.integer("Line"); err != nil {
		return loc, err
	}
	if loc.StartIndex, err = o.integer("StartIndex"); err != nil {
		return loc, err
	}
	if loc.EndIndex, err = o.integer("EndIndex"); err != nil {
		return loc, err
	}
	return loc, nil
}

package cliout

import (
	"strings"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// ParseContainers decodes a containers-realtime result line
func (p *ResultParser) ParseContainers(line string) *entities.ContainersResults {
	if isBlank(line) || !strings.Contains(line, imagesMarker) {
		return nil
	}

	root, err := decodeDocument(line)
	if err != nil {
		p.skip("containers", line, err)
		return nil
	}

	obj, err := asObject(root)
	if err != nil {
		p.skip("containers", line, err)
		return nil
	}

	images, err := field(obj, "Images", toContainerImage)
	if err != nil {
		p.skip("containers", line, err)
		return nil
	}

	return entities.NewContainersResults(images)
}

func toContainerImage(o object) (entities.ContainerImage, error) {
	var img entities.ContainerImage
	var err error

	if img.ImageName, err = o.str("ImageName"); err != nil {
		return img, err
	}
	if img.ImageTag, err = o.str("ImageTag"); err != nil {
		return img, err
	}
	if img.FilePath, err = o.str("FilePath"); err != nil {
		return img, err
	}
	if img.Status, err = o.str("Status"); err != nil {
		return img, err
	}
	if img.Locations, err = field(o, "Locations", toLocation); err != nil {
		return img, err
	}
	if img.Vulnerabilities, err = field(o, "Vulnerabilities", toContainerVulnerability); err != nil {
		return img, err
	}
	return img, nil
}

func toContainerVulnerability(o object) (entities.ContainerVulnerability, error) {
	var v entities.ContainerVulnerability
	var err error

	if v.CVE, err = o.str("CVE"); err != nil {
		return v, err
	}
	if v.Severity, err = o.str("Severity"); err != nil {
		return v, err
	}
	return v, nil
}

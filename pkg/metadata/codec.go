package metadata

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/argspec/pkg/errors"
)

// info section keys
const (
	keyArgSpec     = "argspec"
	keyRetSpec     = "retspec"
	keyAutoArgs    = "auto-args"
	keyAutoRetvals = "auto-retvals"
)

const xmlRoot = "autoargs"

// Encode writes info to w in the given format
func Encode(w io.Writer, info Info, format Format) error {
	var err error
	switch format {
	case FormatInfo:
		err = encodeInfo(w, info)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(info)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(info); err == nil {
			err = enc.Close()
		}
	case FormatXML:
		err = encodeXML(w, info)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown metadata format %q", format)
	}

	if err != nil {
		return errors.Wrapf(err, errors.ErrEncode, "failed to encode %s metadata", format)
	}
	return nil
}

// Decode reads an Info from r in the given format. Empty input yields an
// empty Info.
func Decode(r io.Reader, format Format) (Info, error) {
	var (
		info Info
		err  error
	)
	switch format {
	case FormatInfo:
		info, err = decodeInfo(r)
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&info)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&info)
		if err == io.EOF {
			err = nil
		}
	case FormatXML:
		info, err = decodeXML(r)
	default:
		return Info{}, errors.Newf(errors.ErrInvalidInput, "unknown metadata format %q", format)
	}

	if err != nil {
		return Info{}, errors.Wrapf(err, errors.ErrDecode, "failed to decode %s metadata", format)
	}
	return info, nil
}

func infoFields(info Info) [][2]string {
	return [][2]string{
		{keyArgSpec, info.ArgSpec},
		{keyRetSpec, info.RetSpec},
		{keyAutoArgs, info.AutoArgs},
		{keyAutoRetvals, info.AutoRetvals},
	}
}

func setInfoField(info *Info, key, value string) {
	switch key {
	case keyArgSpec:
		info.ArgSpec = value
	case keyRetSpec:
		info.RetSpec = value
	case keyAutoArgs:
		info.AutoArgs = value
	case keyAutoRetvals:
		info.AutoRetvals = value
	}
}

func encodeInfo(w io.Writer, info Info) error {
	for _, f := range infoFields(info) {
		if f[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:%s\n", f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

func decodeInfo(r io.Reader) (Info, error) {
	var info Info

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimRight(scanner.Text(), "\r"), ":")
		if !ok {
			continue
		}
		setInfoField(&info, key, value)
	}
	return info, scanner.Err()
}

func encodeXML(w io.Writer, info Info) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(xmlRoot)
	for _, f := range infoFields(info) {
		if f[1] == "" {
			continue
		}
		root.CreateElement(f[0]).SetText(f[1])
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func decodeXML(r io.Reader) (Info, error) {
	var info Info

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return info, err
	}

	root := doc.SelectElement(xmlRoot)
	if root == nil {
		if doc.Root() == nil {
			return info, nil
		}
		return info, fmt.Errorf("expected <%s> element, got <%s>", xmlRoot, doc.Root().Tag)
	}
	for _, el := range root.ChildElements() {
		setInfoField(&info, el.Tag, el.Text())
	}
	return info, nil
}

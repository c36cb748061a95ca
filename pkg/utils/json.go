package utils

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa un valor como JSON indentado, pensado para logs y
// salidas de depuración. Ante un error devuelve cadena vacía.
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}
	return string(buffer)
}

// WriteJSONFile serializa un valor como JSON indentado y lo escribe en path.
func WriteJSONFile(path string, in any) error {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error al serializar JSON")
	}

	if err := os.WriteFile(path, buffer, 0o644); err != nil {
		return errors.Wrapf(err, "error al escribir %s", path)
	}

	return nil
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

var SETTINGS_PATH, SETTINGS_DIR, FORMAT, OUTPUT string

func main() {
	// initialize exceptions
	InitExceptions()

	flag.StringVar(&SETTINGS_DIR, "D", ".teamcity", "Directory containing settings.kts")
	flag.StringVar(&FORMAT, "f", "yaml", "Output format (yaml or json)")
	flag.StringVar(&OUTPUT, "o", "", "Output file (default teamcity.<format>)")

	flag.Parse()

	SETTINGS_PATH = filepath.Join(SETTINGS_DIR, "settings.kts")

	// check if settings exist
	data, err := os.ReadFile(SETTINGS_PATH)
	if err != nil {
		RaiseException(FILE_NOT_FOUND, SETTINGS_PATH, true)
	}

	doc, err := Parse(string(data))
	if err != nil {
		RaiseException(PROJECT_NOT_FOUND, SETTINGS_PATH, true)
	}

	// serializer strategy is fixed here, once
	enc := EncoderFor(FORMAT)
	out := OUTPUT
	if out == "" {
		out = "teamcity." + enc.Ext()
	}

	if err := WriteDocument(out, enc, doc); err != nil {
		RaiseException(WRITE_ERROR, err.Error(), true)
	}

	fmt.Printf("Converted to %s\n", out)
	fmt.Println("Output structure:")
	_ = EchoDocument(os.Stdout, doc)
}

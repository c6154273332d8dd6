// Package config provides configuration parsing for the preact command.
//
// The configuration is stored in preact.json or preact.yaml in the working
// directory. A missing file is not an error: Load returns the defaults.
//
// # Configuration File Structure
//
//	{
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "preact"
//	  },
//	  "tracing": {
//	    "enabled": true,
//	    "tracerName": "github.com/wen911119/preact"
//	  },
//	  "output": {
//	    "indent": 2
//	  }
//	}
//
// The same keys are accepted in YAML.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Level:", cfg.Log.Level)
package config

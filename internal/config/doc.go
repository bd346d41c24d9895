// Package config provides configuration parsing for the vangoui preview
// and publish tools.
//
// The configuration is stored in vangoui.json, vangoui.yaml or vangoui.yml
// at the project root. This package handles loading, saving, and
// validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "title": "Widget Gallery",
//	  "preview": {
//	    "host": "localhost",
//	    "port": 4100,
//	    "pretty": false,
//	    "stylesheets": ["https://cdn.example.com/tailwind.css"]
//	  },
//	  "publish": {
//	    "bucket": "my-gallery",
//	    "key": "gallery/index.html",
//	    "region": "eu-west-1",
//	    "endpoint": "http://localhost:9000",
//	    "pathStyle": true
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
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
//	fmt.Println("Preview:", cfg.PreviewURL())
package config

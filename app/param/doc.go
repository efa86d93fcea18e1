// Package param describes quantity parameters and the user's display
// settings, and turns them into options for the expression engine.
//
// A parameter sheet bundles display settings with a list of parameters and
// is stored as YAML or JSON:
//
//	settings:
//	  lengthUnit: mm
//	  lengthPrecision: 2
//	parameters:
//	  - id: width
//	    name: Width
//	    default: 10 mm
//	    quantityType: LENGTH
//	    unit: mm
//	    min: 0
//	    max: 500
package param

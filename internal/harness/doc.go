// Package harness runs skin usage scenarios: a mapset described inline
// together with the element names expected to be used and unused.
//
// # Scenario Format
//
//	name: custom_sliderball
//	description: "A custom slider ball hides the default decorations"
//	mapset:
//	  beatmaps:
//	    - mode: standard
//	      hit_objects: [{kind: slider}]
//	  files: [sliderb.png]
//	used: [sliderb.png]
//	unused: [sliderb-nd.png, sliderb-spec.png]
//
// The mapset block uses the manifest format. Elements lists the names to
// evaluate; when omitted the expected used and unused names are evaluated.
//
// # Deterministic Testing
//
// Report IDs come from testutil.SequentialIDs seeded with the scenario
// name, and every report is written to and read back from a fresh in-memory
// store, so reports compare byte for byte against golden files:
//
//	go test ./internal/harness -update
package harness

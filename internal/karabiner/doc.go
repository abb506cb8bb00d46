// Package karabiner models the complex-modification rule document consumed by
// Karabiner-Elements and renders it as JSON.
//
// The JSON rendering is stable: fields are written in declaration order and
// empty optional parts (modifiers, conditions, title) are omitted rather than
// written as empty objects or arrays, so regenerated files diff cleanly.
//
//	{
//	  "rules": [
//	    {
//	      "description": "...",
//	      "manipulators": [
//	        {
//	          "from": {"key_code": "a", "modifiers": {"mandatory": ["left_shift"]}},
//	          "to": [{"key_code": "b", "modifiers": ["left_shift"]}],
//	          "type": "basic",
//	          "conditions": [{"type": "input_source_if", "input_sources": [...]}]
//	        }
//	      ]
//	    }
//	  ]
//	}
package karabiner

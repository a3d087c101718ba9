// Package hcl_adapter loads HCL run files into the format-agnostic
// config.Model.
//
// A run file looks like:
//
//	data_dir = "data/input"
//
//	puzzle "day3" {
//	  input = "${data_dir}/${day}.txt"
//	  part  = 2
//	}
package hcl_adapter

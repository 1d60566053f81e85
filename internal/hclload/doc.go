// Package hclload reads resource declarations from HCL manifest files and
// translates them into the in-memory resource model. A manifest declares
// resources as labelled blocks:
//
//	resource "file" "/etc/motd" {
//	  arguments {
//	    ensure  = "present"
//	    content = "hello"
//	  }
//	  tags = ["base"]
//	}
//
// Argument order in the source file is preserved in the loaded resource.
package hclload

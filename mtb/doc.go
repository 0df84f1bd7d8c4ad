// Package mtb defines the data-transfer objects of a Molecular Tumor
// Board case file: the File aggregate and the record kinds it carries.
//
// All types are plain value objects with JSON tags matching the wire
// format of the submitting systems. The validator never mutates them.
package mtb

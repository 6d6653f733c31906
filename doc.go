/*
Package openava provides the boundary types around the person tracking
engine in the tracker subpackage: loading per-frame detector output,
normalizing it into tracker objects, grouping per-frame track results
into per-identity tubes and exporting AVA style person proposals.

See example code and usage in the example subdirectory.
*/
package openava

/*
Package ports defines the driven ports (interfaces) of the catalog.

Only the prototype registry needs one: the TemplateStore, which keeps the
named prototype documents. The memory and redis adapters implement it, and
RunTemplateStoreContract checks that an implementation behaves.
*/
package ports

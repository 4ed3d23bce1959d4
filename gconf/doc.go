/*
Package gconf provides a toolset for managing an extension configuration.

Each extension stores a single configuration object in the database under
the "_c:<extension name>" key. The object is any protobuf message that can
validate itself. It is written from the genesis file with InitConfig and
read back with Load whenever the extension needs it.
*/
package gconf

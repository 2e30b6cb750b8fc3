package cache

import "os"

const zooModule = `
module: zoo
classes:
  - name: Animal
  - name: Dog
    bases: [Animal]
functions:
  - {name: feed, params: ["pet: Animal"], returns: None}
variables:
  - "rex: Dog = Dog()"
`

func writeModule(path string) error {
	return os.WriteFile(path, []byte(zooModule), 0o644)
}

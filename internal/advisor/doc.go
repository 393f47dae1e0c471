// Package advisor offers advisory text for a single task title: improvement
// suggestions and a rough complexity profile. Both are keyword driven and
// stateless.
package advisor

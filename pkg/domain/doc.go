// Package domain contains the core entities shared across the application:
// cars, their license plates and owners. These types are intentionally free of
// infrastructure concerns so storage and boundary packages can depend on them.
package domain

package engine_test

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"object-mapper/access"
	"object-mapper/engine"
	"object-mapper/mapping"
	"object-mapper/registry"
	"object-mapper/store"
	"object-mapper/warehouse"
)

func statusLabel(s store.OrderStatus) string { return strings.ToLower(string(s)) }

// Example maps a storefront order onto a fulfillment order: renamed
// fields, flattened customer contact, a converted status enum, a nested
// address and a constant origin tag.
func Example() {
	src := reflect.TypeOf(store.Order{})
	dst := reflect.TypeOf(warehouse.Order{})

	orders := mapping.NewTypeMap(src, dst)
	for _, paths := range [][2]string{
		{"Reference", "OrderNumber"},
		{"Status", "Status"},
		{"TotalCents", "TotalAmount"},
		{"Customer.FullName", "Customer.Name"},
		{"Customer.Contact.Email", "Customer.Email"},
		{"Customer.Contact.Phone", "Customer.Phone"},
		{"Customer.IsActive", "Customer.Active"},
		{"Shipping", "Shipping"},
		{"OrderedAt", "PlacedAt"},
	} {
		orders.Add(mapping.NewPropertyMapping(
			access.MustAccessors(src, paths[0]),
			access.MustMutators(dst, paths[1]),
		))
	}
	orders.Add(mapping.NewConstantMapping("storefront", access.MustMutators(dst, "Origin")))

	addrSrc := reflect.TypeOf(store.Address{})
	addrDst := reflect.TypeOf(warehouse.Address{})

	addresses := mapping.NewTypeMap(addrSrc, addrDst)
	for _, paths := range [][2]string{
		{"Street", "Street"},
		{"City", "City"},
		{"PostalCode", "Zip"},
		{"Country", "Country"},
	} {
		addresses.Add(mapping.NewPropertyMapping(
			access.MustAccessors(addrSrc, paths[0]),
			access.MustMutators(addrDst, paths[1]),
		))
	}

	typeMaps := registry.NewTypeMapRegistry()
	typeMaps.Put(orders)
	typeMaps.Put(addresses)

	// Prepended so it outranks the stock same-kind conversion, which would
	// keep the uppercase enum spelling.
	converters := registry.NewConverterRegistry(registry.Builtins()...)
	converters.Prepend(registry.MustParseFunc(statusLabel))

	e := engine.New(engine.Config{TypeMaps: typeMaps, Converters: converters})

	order := &store.Order{
		ID:         1042,
		Reference:  "SO-1042",
		Status:     store.StatusPaid,
		TotalCents: 15990,
		Customer: &store.Customer{
			FullName: "Avery Quinn",
			IsActive: true,
			Contact:  &store.Contact{Email: "avery@example.com", Phone: "555-0117"},
		},
		Shipping: &store.Address{
			Street:     "1 Pier Ave",
			City:       "Portsmouth",
			PostalCode: "PO1 2AB",
			Country:    "GB",
		},
		OrderedAt: time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC),
	}

	out, err := engine.To[warehouse.Order](e, order)
	fmt.Println(err)
	fmt.Println(out.OrderNumber, out.Status, out.TotalAmount, out.Origin)
	fmt.Println(out.Customer.Name, out.Customer.Email, out.Customer.Phone, out.Customer.Active)
	fmt.Println(out.Shipping.Street, out.Shipping.City, out.Shipping.Zip, out.Shipping.Country)
	fmt.Println(out.PlacedAt.Format(time.RFC3339))

	// Output:
	// <nil>
	// SO-1042 paid 15990 storefront
	// Avery Quinn avery@example.com 555-0117 true
	// 1 Pier Ave Portsmouth PO1 2AB GB
	// 2024-03-14T09:30:00Z
}

// Command seed populates a database with generated demo data so the
// dashboard has something to show in development environments.
package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/tawsil-app/ops-dashboard/internal/config"
	"github.com/tawsil-app/ops-dashboard/internal/db"
	"github.com/tawsil-app/ops-dashboard/internal/models"
	"github.com/tawsil-app/ops-dashboard/internal/repo"
)

var fake = faker.New()

var vehicleTypes = []string{models.VehicleMotorcycle, models.VehicleCar, models.VehicleBicycle}
var categories = []string{"restaurants", "groceries", "pharmacy", ""}
var orderStatuses = []string{models.OrderPending, models.OrderInProgress, models.OrderDelivered, models.OrderCancelled}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	defer database.Close()

	customers := repo.NewPostgresCustomerRepository(database)
	captains := repo.NewPostgresCaptainRepository(database)
	merchants := repo.NewPostgresMerchantRepository(database)
	products := repo.NewPostgresProductRepository(database)
	orders := repo.NewPostgresOrderRepository(database)

	var customerIDs, captainIDs, merchantIDs []int

	for range 40 {
		c, err := customers.Create(makeCustomer())
		if err != nil {
			log.Fatalf("seeding customers: %v", err)
		}
		customerIDs = append(customerIDs, c.ID)
	}

	for range 12 {
		c, err := captains.Create(makeCaptain())
		if err != nil {
			log.Fatalf("seeding captains: %v", err)
		}
		captainIDs = append(captainIDs, c.ID)
	}

	for range 10 {
		m, err := merchants.Create(makeMerchant())
		if err != nil {
			log.Fatalf("seeding merchants: %v", err)
		}
		merchantIDs = append(merchantIDs, m.ID)
	}

	for _, merchantID := range merchantIDs {
		for range 8 {
			if _, err := products.Create(makeProduct(merchantID)); err != nil {
				log.Fatalf("seeding products: %v", err)
			}
		}
	}

	for range 120 {
		o := makeOrder(customerIDs, merchantIDs, captainIDs)
		if _, err := orders.Create(o); err != nil {
			log.Fatalf("seeding orders: %v", err)
		}
	}

	log.Printf("Seeded %d customers, %d captains, %d merchants, %d products, 120 orders",
		len(customerIDs), len(captainIDs), len(merchantIDs), len(merchantIDs)*8)
}

func makeCustomer() models.Customer {
	return models.Customer{
		Name:      fake.Person().Name(),
		Phone:     fake.Phone().Number(),
		Email:     fake.Internet().Email(),
		City:      fake.Address().City(),
		IsActive:  rand.Float64() < 0.85,
		CreatedAt: time.Now().UTC().AddDate(0, 0, -rand.Intn(365)),
	}
}

func makeCaptain() models.Captain {
	return models.Captain{
		Name:            fake.Person().Name(),
		Phone:           fake.Phone().Number(),
		IsActive:        rand.Float64() < 0.9,
		IsAvailable:     rand.Float64() < 0.6,
		VehicleType:     vehicleTypes[rand.Intn(len(vehicleTypes))],
		AverageRating:   3.5 + rand.Float64()*1.5,
		TotalDeliveries: rand.Intn(900),
		SuccessRate:     80 + rand.Intn(21),
	}
}

func makeMerchant() models.Merchant {
	return models.Merchant{
		Name:           fake.Company().Name(),
		Phone:          fake.Phone().Number(),
		IsActive:       rand.Float64() < 0.8,
		CommissionRate: 5 + rand.Float64()*20,
		Category:       categories[rand.Intn(len(categories))],
		CreatedAt:      time.Now().UTC().AddDate(0, 0, -rand.Intn(730)),
	}
}

func makeProduct(merchantID int) models.Product {
	status := models.ProductActive
	if rand.Float64() < 0.15 {
		status = "archived"
	}
	return models.Product{
		MerchantID: merchantID,
		Name:       fake.Food().Fruit(),
		Status:     status,
		Price:      2 + rand.Float64()*80,
		Stock:      rand.Intn(120),
	}
}

func makeOrder(customerIDs, merchantIDs, captainIDs []int) models.Order {
	status := orderStatuses[rand.Intn(len(orderStatuses))]
	created := time.Now().UTC().Add(-time.Duration(rand.Intn(72)) * time.Hour)

	o := models.Order{
		Status:     status,
		Amount:     10 + rand.Float64()*190,
		CustomerID: customerIDs[rand.Intn(len(customerIDs))],
		MerchantID: merchantIDs[rand.Intn(len(merchantIDs))],
		CreatedAt:  created,
	}
	if status != models.OrderPending && len(captainIDs) > 0 {
		id := captainIDs[rand.Intn(len(captainIDs))]
		o.CaptainID = &id
	}
	if status == models.OrderDelivered {
		completed := created.Add(time.Duration(15+rand.Intn(90)) * time.Minute)
		o.CompletedAt = &completed
	}
	return o
}

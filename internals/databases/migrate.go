package database

import (
	"log"

	batchModel "academyku_backend/internals/features/academic/batches/model"
	lookupModel "academyku_backend/internals/features/academic/lookups/model"
	studentModel "academyku_backend/internals/features/academic/students/model"
	discountModel "academyku_backend/internals/features/finance/discounts/model"
	emiModel "academyku_backend/internals/features/finance/emi/model"
	feeModel "academyku_backend/internals/features/finance/feestructures/model"
	paymentModel "academyku_backend/internals/features/finance/payments/model"
	userModel "academyku_backend/internals/features/users/model"
)

// Migrate runs AutoMigrate for every model. Ordered so referenced tables
// exist before the tables that point at them.
func Migrate() {
	if DB == nil {
		log.Fatal("❌ Migrate called before ConnectDB")
	}

	err := DB.AutoMigrate(
		&userModel.UserModel{},

		&lookupModel.CourseModel{},
		&lookupModel.UniversityModel{},
		&lookupModel.NationalityModel{},

		&batchModel.BatchModel{},
		&studentModel.StudentModel{},

		&feeModel.FeeStructureModel{},
		&discountModel.DiscountModel{},

		&paymentModel.Payment{},
		&emiModel.InstallmentModel{},
		&paymentModel.PaymentGatewayEvent{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrated")
}
